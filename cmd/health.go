package main

import (
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// healthService is the gRPC health service name reported alongside the overall ("") status.
const healthService = "myexplorer"

// newHealthReporter returns the RefreshLoop result callback: the service is SERVING after a successful
// children refresh and NOT_SERVING after a failed one. Both statuses start as NOT_SERVING.
func newHealthReporter(hs *health.Server) func(err error) {
	set := func(status grpc_health_v1.HealthCheckResponse_ServingStatus) {
		hs.SetServingStatus("", status)
		hs.SetServingStatus(healthService, status)
	}
	set(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	return func(err error) {
		if err != nil {
			set(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
			return
		}
		set(grpc_health_v1.HealthCheckResponse_SERVING)
	}
}
