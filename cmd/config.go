package cmd

// Config carries process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AssignmentJobSchedule is the six-field cron expression for the
	// received-order assignment sweep.
	AssignmentJobSchedule string

	// Classifier ceilings. Zero values select the chain defaults.
	ClassifierValueCeiling    int64
	ClassifierWeightCeilingKg float64
	ClassifierGarmentCeiling  int
}
