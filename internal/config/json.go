package config

import (
	"encoding/json"
	"os"

	"github.com/selikem/ewehub/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields are left at their zero value and do not overwrite earlier
// layers.
type jsonConfig struct {
	SpreadsheetID   *string `json:"spreadsheet_id"`
	UsersSheet      *string `json:"users_sheet"`
	DatasetSheet    *string `json:"dataset_sheet"`
	CredentialsFile *string `json:"credentials_file"`
	AdminUsername   *string `json:"admin_username"`
	AdminPassword   *string `json:"admin_password"`
	LogLevel        *string `json:"log_level"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (see
// flagx.JSONConfigFlags); when neither is set, nothing is loaded.
// Read or unmarshal errors panic — a broken config file should stop
// startup, not be silently ignored.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.SpreadsheetID != nil {
		cfg.SpreadsheetID = *jc.SpreadsheetID
	}
	if jc.UsersSheet != nil {
		cfg.UsersSheet = *jc.UsersSheet
	}
	if jc.DatasetSheet != nil {
		cfg.DatasetSheet = *jc.DatasetSheet
	}
	if jc.CredentialsFile != nil {
		cfg.CredentialsFile = *jc.CredentialsFile
	}
	if jc.AdminUsername != nil {
		cfg.AdminUsername = *jc.AdminUsername
	}
	if jc.AdminPassword != nil {
		cfg.AdminPassword = *jc.AdminPassword
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
