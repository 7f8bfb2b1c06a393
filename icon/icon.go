// Package icon renders status glyphs in the variant chosen by the user.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vidl-cli/vidl/key"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns every supported icon style identifier.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a status glyph.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Info
	Progress
	Download
	Tool
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "\uf00c", plain: "✓"},
	Fail:     {emoji: "❌", nerd: "\uf00d", plain: "✗"},
	Warn:     {emoji: "⚠️", nerd: "\uf071", plain: "!"},
	Info:     {emoji: "ℹ️", nerd: "\uf05a", plain: "i"},
	Progress: {emoji: "⏳", nerd: "\uf110", plain: "…"},
	Download: {emoji: "📥", nerd: "\uf019", plain: "↓"},
	Tool:     {emoji: "🔧", nerd: "\uf0ad", plain: "*"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the glyph for i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
