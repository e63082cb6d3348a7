// Package config assembles runtime settings for the hub from defaults,
// the environment, an optional JSON file, and command-line flags, in
// that order (later sources win).
package config

// Config holds runtime settings for the Ewe Dataset Hub.
//
// Fields:
//   - SpreadsheetID: id of the Google Sheets document holding both tables.
//   - UsersSheet / DatasetSheet: worksheet titles of the two tables.
//   - CredentialsFile: path to the service-account JSON used to reach the
//     spreadsheet service; empty means application-default credentials.
//   - AdminUsername / AdminPassword: the bootstrap admin credential pair.
//     It is checked before the users table is consulted and is never
//     stored in the table.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	SpreadsheetID   string
	UsersSheet      string
	DatasetSheet    string
	CredentialsFile string
	AdminUsername   string
	AdminPassword   string
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults. The admin credential
// pair defaults to the historical one so existing deployments keep
// working; override it via environment or config file.
func (c *Config) LoadDefaults() {
	c.UsersSheet = "users"
	c.DatasetSheet = "dataset"
	c.AdminUsername = "admin"
	c.AdminPassword = "1345"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if -c/-config is given), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
