package common

const (
	// API_HEALTH reports if the server is up
	API_HEALTH = "/healthz"

	// API_COMPILE assembles a job without launching it
	API_COMPILE = "/api/v1/compile"

	// API_JOBS is used to assemble & launch jobs
	API_JOBS = "/api/v1/jobs"

	// API_SEQUENCES groups paths into file sequences
	API_SEQUENCES = "/api/v1/sequences"
)
