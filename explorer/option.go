package explorer

// Option configures a Model at construction time, the same flat
// functional-options shape the teacher uses for its MasterConfig.
type Option func(*Model)

// WithProvider installs a custom NodeProvider.
func WithProvider(p NodeProvider) Option {
	return func(m *Model) { m.provider = p }
}

// WithWidth sets the initial viewport width.
func WithWidth(w int) Option {
	return func(m *Model) { m.width = w }
}

// WithHeight sets the initial viewport height.
func WithHeight(h int) Option {
	return func(m *Model) { m.height = h }
}

// WithKeyMap overrides the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keyMap = k }
}

// WithCollapsed starts every node collapsed except the root.
func WithCollapsed() Option {
	return func(m *Model) {
		for n, ent := range m.entries {
			if n != m.root {
				ent.expanded = false
			}
		}
	}
}
