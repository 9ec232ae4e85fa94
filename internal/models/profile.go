package models

import (
	"github.com/go-viper/mapstructure/v2"
)

// Profile is the typed read view of a record served to profile pages.
// The password hash is deliberately absent.
type Profile struct {
	Username    string `mapstructure:"username" json:"username"`
	FullName    string `mapstructure:"fullName" json:"fullName"`
	Diet        string `mapstructure:"diet" json:"diet"`
	Allergies   string `mapstructure:"allergies" json:"allergies"`
	Preferences string `mapstructure:"preferences" json:"preferences"`
}

// ProfileFromRecord decodes a record into its profile view.
func ProfileFromRecord(record Record) (*Profile, error) {
	profile := &Profile{}
	if err := mapstructure.Decode(map[string]string(record), profile); err != nil {
		return nil, err
	}
	return profile, nil
}
