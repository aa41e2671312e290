package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/solmint/solmint/internal/solana"
	"github.com/solmint/solmint/internal/wallet"
	solerrors "github.com/solmint/solmint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their config key rather than the Go field name.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("cluster", func(fl validator.FieldLevel) bool {
			return solana.Cluster(fl.Field().String()).Known()
		})

		_ = v.RegisterValidation("rpc_url", func(fl validator.FieldLevel) bool {
			u, err := url.Parse(fl.Field().String())
			if err != nil || u.Host == "" {
				return false
			}
			return u.Scheme == "http" || u.Scheme == "https"
		})

		_ = v.RegisterValidation("pubkey", func(fl validator.FieldLevel) bool {
			_, err := wallet.ParsePublicKey(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return solerrors.NewValidationError("config", "config is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into SolMint validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := configKey(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Value() != nil && fmt.Sprint(ve.Value()) != "" {
			msg = fmt.Sprintf("%s (got %q)", msg, fmt.Sprint(ve.Value()))
		}
		if ve.Tag() == "cluster" {
			msg += "; expected one of " + solana.ClusterNames()
		}
		return solerrors.NewValidationError(field, msg, err)
	}

	return solerrors.NewValidationError("config", err.Error(), err)
}

// configKey turns "Config.network.rpc_url" into "network.rpc_url".
func configKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}
