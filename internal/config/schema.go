package config

// Config is the top-level ladenctl configuration. The yaml tags keep
// Save output readable by the viper/mapstructure load path.
type Config struct {
	Shop        ShopConfig        `mapstructure:"shop" yaml:"shop"`
	Data        DataConfig        `mapstructure:"data" yaml:"data"`
	OpenLibrary OpenLibraryConfig `mapstructure:"openlibrary" yaml:"openlibrary"`
}

// ShopConfig holds the cosmetic identity of the shop instance.
type ShopConfig struct {
	Name string `mapstructure:"name" yaml:"name"`
}

// DataConfig locates the persisted inventory and cover images.
type DataConfig struct {
	// File is the buecher.json inventory file.
	File string `mapstructure:"file" yaml:"file"`
	// CoversDir is where fetched cover images are stored.
	CoversDir string `mapstructure:"covers_dir" yaml:"covers_dir"`
	// SeedFile, when set, is copied to File on first run so a packaged
	// default inventory ships with the binary.
	SeedFile string `mapstructure:"seed_file" yaml:"seed_file"`
}

// OpenLibraryConfig tunes the cover lookup client.
type OpenLibraryConfig struct {
	UserAgent         string `mapstructure:"user_agent" yaml:"user_agent"`
	RequestsPerSecond int    `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	MaxRetries        int    `mapstructure:"max_retries" yaml:"max_retries"`
}
