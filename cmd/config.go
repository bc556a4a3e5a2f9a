package cmd

type Config struct {
	HTTPPort            string
	BackendAPIURL       string
	BackendServiceToken string
	RosterCronSchedule  string
}
