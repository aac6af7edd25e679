package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/dataset --output domain/dataset --outpkg datasetmock --filename source_mock.go
