package config

// Manifest represents the structure of the fresh.yaml manifest file.
type Manifest struct {
	Version  string                `yaml:"version"`
	Projects map[string]ProjectDTO `yaml:"projects"`
}

// ProjectDTO represents a project declaration in the manifest.
type ProjectDTO struct {
	Configurations map[string]ConfigurationDTO `yaml:"configurations"`
}

// ConfigurationDTO represents one build configuration of a project.
type ConfigurationDTO struct {
	Inputs     []string      `yaml:"inputs"`
	Outputs    []string      `yaml:"outputs"`
	Copy       []CopyItemDTO `yaml:"copy"`
	References []string      `yaml:"references"`
}

// CopyItemDTO represents a copy-to-output item.
type CopyItemDTO struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}
