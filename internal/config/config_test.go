package config

import "testing"

func TestFromEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    int
	}{
		{"unset", map[string]string{}, DefaultPort},
		{"empty", map[string]string{"PORT": ""}, DefaultPort},
		{"valid", map[string]string{"PORT": "4321"}, 4321},
		{"max", map[string]string{"PORT": "65535"}, 65535},
		{"not a number", map[string]string{"PORT": "http"}, DefaultPort},
		{"zero", map[string]string{"PORT": "0"}, DefaultPort},
		{"negative", map[string]string{"PORT": "-80"}, DefaultPort},
		{"too large", map[string]string{"PORT": "70000"}, DefaultPort},
		{"other vars ignored", map[string]string{"HOST": "x", "PORT": "8080"}, 8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromEnvironment(tt.environ).Port; got != tt.want {
				t.Errorf("Port = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "5050")
	if got := Load().Port; got != 5050 {
		t.Errorf("Port = %d, want 5050", got)
	}
}
