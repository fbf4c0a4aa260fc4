package cmd

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// FCMCredentialsFile is the path to the Firebase service account JSON.
	// Empty disables push notifications.
	FCMCredentialsFile string

	// RedisAddr is the host:port of the Redis instance carrying admin
	// dashboard events. Empty disables broadcasting.
	RedisAddr string

	// EnforceAvailability toggles the partner weekly-schedule check during
	// assignment. Off, every active partner counts as available.
	EnforceAvailability bool

	// MaxOpenSOSAlerts caps unresolved SOS bookings per customer. Zero means
	// unlimited.
	MaxOpenSOSAlerts int64
}
