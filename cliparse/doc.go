/*
Package cliparse handles configuration from CLI flags and environment variables.

CLI flags take precedence over environment variables:

	-p / PORT                 Server port (default: 3319)
	-d / DATABASE_URL         PostgreSQL connection string (required)
	-img / IMAGE_DIR          Directory for uploaded images (default: img)
	-top-n / RESULTS_TOP_N    Size of the results top list (default: 5)

Usage:

	cfg, err := cliparse.ParseFlags(os.Args[1:])
*/
package cliparse
