package req

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/signpost"
)

// A queryParamDecoder fills a struct from url.Values.
type queryParamDecoder interface {
	decode(structPtr any, vals url.Values) error
}

type schemaDecoder struct {
	*schema.Decoder
}

func newQueryParamDecoder() schemaDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return schemaDecoder{dec}
}

// decode fills structPtr with vals, translating any error raised into standardized errors.
func (d schemaDecoder) decode(structPtr any, vals url.Values) error {
	err := d.Decode(structPtr, vals)
	if err == nil {
		return nil
	}

	if strings.HasPrefix(err.Error(), "schema: interface must be a pointer to struct") {
		return fmt.Errorf("%w: %s", signpost.ErrBadAny, err)
	}

	return translateDecoderError(err)
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE(dlk): In testing the schema package, outside other errors handled above,
	// the package appears to always use MultiError to wrap errors up.
	// This is the "happy path".
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", signpost.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// NOTE(dlk): For non-slice values, ce.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, signpost.ErrNotImplemented)

		case schema.UnknownKeyError:
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// NOTE(dlk): A field that requires, but that does not have a schema.Converter registered,
			// will not raise an error until a url.Values has the key set for the incorrectly configured field.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", signpost.ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", signpost.ErrUnexpected, err)
		}
	}

	return validErrs
}
