package telemetry

// ParseEndpointForTest exposes parseEndpoint to the external test package.
func ParseEndpointForTest(endpoint string) (hostPort string, insecure bool, err error) {
	t, err := parseEndpoint(endpoint)
	return t.hostPort, t.insecure, err
}
