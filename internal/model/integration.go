package model

// IntegrationConfig LRS 遥测转发配置
type IntegrationConfig struct {
	Endpoint string `json:"endpoint"`
	Key      string `json:"key"`
	Secret   string `json:"secret"`
	Enabled  bool   `json:"enabled"`
}

// EmissionEnabled reports whether statements should be forwarded to a remote store.
func (c IntegrationConfig) EmissionEnabled() bool {
	return c.Enabled && c.Endpoint != ""
}
