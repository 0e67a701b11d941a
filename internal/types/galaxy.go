package types

// Galaxy mirrors the fields of a collection's galaxy.yml manifest.
// Only Namespace and Name gate activation; the remaining fields are
// carried for inspection and version reporting.
type Galaxy struct {
	Namespace     string            `yaml:"namespace"`
	Name          string            `yaml:"name"`
	Version       string            `yaml:"version,omitempty"`
	Readme        string            `yaml:"readme,omitempty"`
	Authors       []string          `yaml:"authors,omitempty"`
	Description   string            `yaml:"description,omitempty"`
	License       []string          `yaml:"license,omitempty"`
	LicenseFile   string            `yaml:"license_file,omitempty"`
	Tags          []string          `yaml:"tags,omitempty"`
	Dependencies  map[string]string `yaml:"dependencies,omitempty"`
	Repository    string            `yaml:"repository,omitempty"`
	Documentation string            `yaml:"documentation,omitempty"`
	Homepage      string            `yaml:"homepage,omitempty"`
	Issues        string            `yaml:"issues,omitempty"`
	BuildIgnore   []string          `yaml:"build_ignore,omitempty"`
}

// CollectionIdentity is the namespace/name pair that identifies a
// collection. The zero value means the identity could not be resolved.
type CollectionIdentity struct {
	Namespace string
	Name      string
}
