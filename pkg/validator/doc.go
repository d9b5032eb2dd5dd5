// Package validator validates and prunes action payloads against declarative,
// per-action-type schemas.
//
// A schema is a tree of Node values. Branch nodes (Fields) mirror the nesting of
// the payload; leaf nodes (Leaf) hold an ordered list of Rule values, each pairing
// a Predicate with the message reported when it fails. Schemas maps an action
// type to the root node used for payloads carrying that "type".
//
// # Usage
//
//	schemas := validator.Schemas{
//	    "SIGN_UP": validator.Fields(map[string]validator.Node{
//	        "email": validator.Leaf(
//	            validator.NewRule(validator.Required, "Email is required"),
//	            validator.NewRule(validator.Email, "Invalid format for email address"),
//	        ),
//	        "user": validator.Fields(map[string]validator.Node{
//	            "age": validator.Leaf(validator.NewRule(validator.Min(18), "You are too young")),
//	        }),
//	    }),
//	}
//
//	validate := validator.MakeValidator(schemas)
//	validate(payload) // nil, or Errors{"user": Errors{"age": []string{"You are too young"}}}
//
//	prune := validator.MakePruner(schemas)
//	prune(payload) // deep copy without the failing fields
//
// # Evaluation policy
//
// Rules of a field run in declaration order and evaluation stops at the first
// failure, so each failing field reports exactly one message. WithAllFailures
// switches to collecting every failing message. Fields missing from the payload
// are not evaluated, unknown payload fields are ignored, and payloads whose type
// has no schema are always valid.
//
// # Error Handling
//
// Errors implements error and matches ErrValidationFailed with errors.Is, so a
// result can be returned directly from middleware. Use ExtractErrors to get the
// field-level messages back. The valid result is always nil.
//
// Nothing here mutates its input; the package is stateless and goroutine-safe.
package validator
