package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Loader --dir ../domain/player --output domain/player --outpkg playermock --filename loader_mock.go
