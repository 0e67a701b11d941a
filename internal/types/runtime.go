package types

// AnsibleRuntime describes the ansible-core installation detected by the
// probe. Version holds the raw version string as reported by the
// interpreter; SupportsFinder is true when that version ships the
// collection finder (ansible-base 2.10 and later).
type AnsibleRuntime struct {
	Installed      bool
	Version        string
	SupportsFinder bool
}
