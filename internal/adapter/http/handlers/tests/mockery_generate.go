package tests

// The hand-written mocks in this package follow mockery's layout and can be
// regenerated with:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name FolderService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename folder_service_mock.go --with-expecter
