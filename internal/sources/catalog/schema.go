package catalog

// VideoEntry represents a single video entry in the catalog YAML.
type VideoEntry struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Thumbnail string `yaml:"thumbnail"`
	Video     string `yaml:"video"`
	Prompt    string `yaml:"prompt"`
	Creator   string `yaml:"creator"`
}

// Config is the root structure of catalog.yaml.
type Config struct {
	Videos []VideoEntry `yaml:"videos"`
}
