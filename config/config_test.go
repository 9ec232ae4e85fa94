package config

import (
	"os"
	"reflect"
	"testing"

	"github.com/mealmajor/accountd/internal/schema"
)

func TestMain(m *testing.M) {
	invalidYamlPath := "./invalid_config.yaml"
	invalidContent := []byte("invalid: [unclosed_list\nanother: value")

	// Create invalid YAML file
	if err := os.WriteFile(invalidYamlPath, invalidContent, 0600); err != nil {
		panic("failed to create invalid YAML file: " + err.Error())
	}

	// Run tests
	code := m.Run()

	// Clean up
	os.Remove(invalidYamlPath)

	os.Exit(code)
}

func TestReadLocalConfig(t *testing.T) {
	type args struct {
		configPath string
	}
	tests := []struct {
		name    string
		args    args
		want    *ServiceConfig
		wantErr bool
	}{
		{
			name: "successful",
			args: args{
				configPath: "../res/config.yaml",
			},
			want: &ServiceConfig{
				ServiceName:    "accountd",
				LogLevel:       "DEBUG",
				Host:           "localhost",
				Port:           "8085",
				PrivateKeyPath: "./res/session_key.pem",
				Store: StoreConfig{
					DataPath: "./res/user_data.json",
					Attributes: []schema.Attribute{
						{Key: "username"},
						{Key: "fullName"},
						{Key: "password"},
						{Key: "diet"},
						{Key: "allergies"},
						{Key: "preferences"},
					},
				},
				Login: LoginConfig{
					RateLimit: 5,
					RateBurst: 10,
				},
			},
			wantErr: false,
		},
		{
			name: "file does not exist",
			args: args{
				configPath: "",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "invalid YAML file",
			args: args{
				configPath: "./invalid_config.yaml",
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLocalConfig(tt.args.configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadLocalConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLocalConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreConfig_TemplateAttributes(t *testing.T) {
	tests := []struct {
		name string
		cfg  StoreConfig
		want []schema.Attribute
	}{
		{
			name: "configured attributes win",
			cfg: StoreConfig{
				Attributes: []schema.Attribute{{Key: "diet", Default: "omnivore"}},
			},
			want: []schema.Attribute{{Key: "diet", Default: "omnivore"}},
		},
		{
			name: "empty config falls back to defaults",
			cfg:  StoreConfig{},
			want: schema.DefaultAttributes(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.TemplateAttributes(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TemplateAttributes() = %v, want %v", got, tt.want)
			}
		})
	}
}
