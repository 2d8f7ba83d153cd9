package rewrite

import (
	"regexp"
	"strings"
)

// FileVariant assigns a file under params migration to exactly one of a
// closed set of structural patterns.
type FileVariant int

const (
	// AlreadyMigrated files contain the asynchronous-unwrap call form.
	AlreadyMigrated FileVariant = iota
	// ParamsPropPattern files receive params as a typed component prop.
	ParamsPropPattern
	// HookPattern files read params through the synchronous useParams() hook.
	HookPattern
	// Unrecognized files match none of the known shapes and are skipped.
	Unrecognized
)

func (v FileVariant) String() string {
	switch v {
	case AlreadyMigrated:
		return "already_migrated"
	case ParamsPropPattern:
		return "params_prop"
	case HookPattern:
		return "use_params_hook"
	case Unrecognized:
		return "unrecognized"
	}
	return "unknown"
}

// Classification is the result of classifying one file: its variant plus the
// inferred route-parameter name (empty for already-migrated files).
type Classification struct {
	Variant   FileVariant
	ParamName string
}

var (
	propAnnotationRe  = regexp.MustCompile(`params:\s*\{`)
	propDestructureRe = regexp.MustCompile(`}\s*\{\s*params\s*}:`)
	propSignatureRe   = regexp.MustCompile(`function.*\{\s*params\s*}:`)
)

// Classify inspects a file's text and assigns it to exactly one variant.
// Rules are checked in order and the first match wins. The classification is
// computed fresh from the current text on every call; a prior run may have
// changed the file.
func Classify(fileText string) Classification {
	if strings.Contains(fileText, "use(params)") {
		return Classification{Variant: AlreadyMigrated}
	}

	name := "id"
	if strings.Contains(fileText, "[trackingNumber]") || strings.Contains(fileText, "trackingNumber") {
		name = "trackingNumber"
	}

	switch {
	case propAnnotationRe.MatchString(fileText),
		propDestructureRe.MatchString(fileText),
		propSignatureRe.MatchString(fileText):
		return Classification{Variant: ParamsPropPattern, ParamName: name}
	case strings.Contains(fileText, "useParams()"):
		return Classification{Variant: HookPattern, ParamName: name}
	}
	return Classification{Variant: Unrecognized, ParamName: name}
}
