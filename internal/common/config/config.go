// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Skill    SkillConfig    `mapstructure:"skill"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int `mapstructure:"write_timeout"` // milliseconds
}

type DatabaseConfig struct {
	DynamoDB      DynamoDBConfig      `mapstructure:"dynamodb"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type DynamoDBConfig struct {
	TableName string `mapstructure:"table_name"`
	Region    string `mapstructure:"region"`
}

// ElasticsearchConfig points at the search domain endpoint. AccessKey and
// SecretKey sign outbound requests; leaving them empty is not a startup
// error, the failure surfaces on the first signed call.
type ElasticsearchConfig struct {
	Address   string `mapstructure:"address"`
	Index     string `mapstructure:"index"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// SkillConfig holds settings for the conversational function.
type SkillConfig struct {
	DefaultLocale string `mapstructure:"default_locale"`
	LookupTimeout int    `mapstructure:"lookup_timeout"` // milliseconds
}

// SyncConfig holds settings for the change-feed function.
type SyncConfig struct {
	Timeout int `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
