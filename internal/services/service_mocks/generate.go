package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// Regenerate with:
//   go generate ./internal/services/service_mocks
