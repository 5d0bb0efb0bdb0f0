package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
// PARTYPLAN_STORE_TYPE overrides [store] type, and so on.
const EnvPrefix = "PARTYPLAN"

// NewEnv returns a viper instance reading PARTYPLAN_* environment variables.
func NewEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// ApplyEnv overrides cfg with values set in the environment.
// Invalid values are reported in cfg.Warnings and ignored.
func ApplyEnv(cfg *domain.Config, v *viper.Viper) {
	if v.IsSet("store.type") {
		st := domain.StoreType(v.GetString("store.type"))
		if st == domain.StoreJSON || st == domain.StoreSQLite {
			cfg.Store.Type = st
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value in %s_STORE_TYPE: %q", EnvPrefix, st))
		}
	}
	if v.IsSet("document.format") {
		f := domain.DocumentFormat(v.GetString("document.format"))
		if f == domain.FormatJSON || f == domain.FormatYAML {
			cfg.Document.Format = f
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value in %s_DOCUMENT_FORMAT: %q", EnvPrefix, f))
		}
	}
	if v.IsSet("document.indent") {
		raw := v.GetString("document.indent")
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			cfg.Document.Indent = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value in %s_DOCUMENT_INDENT: %q", EnvPrefix, raw))
		}
	}
	if v.IsSet("display.currency") {
		cfg.Display.Currency = v.GetString("display.currency")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.console") {
		cfg.Log.Console = v.GetBool("log.console")
	}
}
