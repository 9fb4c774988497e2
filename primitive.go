package oasgen

// Kind is the JSON type of a primitive.
type Kind string

// Primitive kinds.
const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
)

// Primitive is a scalar type with an optional format.
type Primitive struct {
	Kind   Kind
	Format string
}

// PrimitiveOf returns a primitive with the given kind and format.
func PrimitiveOf(kind Kind, format string) Primitive {
	return Primitive{Kind: kind, Format: format}
}

// String returns a string.
func String() Primitive { return Primitive{Kind: KindString} }

// Byte returns a base64 encoded string.
func Byte() Primitive { return Primitive{Kind: KindString, Format: "byte"} }

// Binary returns a string of arbitrary bytes.
func Binary() Primitive { return Primitive{Kind: KindString, Format: "binary"} }

// Date returns an RFC 3339 full-date string.
func Date() Primitive { return Primitive{Kind: KindString, Format: "date"} }

// DateTime returns an RFC 3339 date-time string.
func DateTime() Primitive { return Primitive{Kind: KindString, Format: "date-time"} }

// Password returns a string hidden by documentation tools.
func Password() Primitive { return Primitive{Kind: KindString, Format: "password"} }

// Email returns an email address string.
func Email() Primitive { return Primitive{Kind: KindString, Format: "email"} }

// Number returns a number of any precision.
func Number() Primitive { return Primitive{Kind: KindNumber} }

// Float returns a single precision number.
func Float() Primitive { return Primitive{Kind: KindNumber, Format: "float"} }

// Double returns a double precision number.
func Double() Primitive { return Primitive{Kind: KindNumber, Format: "double"} }

// Integer returns an integer of any size.
func Integer() Primitive { return Primitive{Kind: KindInteger} }

// Int32 returns a 32 bit integer.
func Int32() Primitive { return Primitive{Kind: KindInteger, Format: "int32"} }

// Int64 returns a 64 bit integer.
func Int64() Primitive { return Primitive{Kind: KindInteger, Format: "int64"} }

// Boolean returns a boolean.
func Boolean() Primitive { return Primitive{Kind: KindBoolean} }

var primitivesByName = map[string]func() Primitive{
	"String":   String,
	"Byte":     Byte,
	"Binary":   Binary,
	"Date":     Date,
	"DateTime": DateTime,
	"Password": Password,
	"Email":    Email,
	"Number":   Number,
	"Float":    Float,
	"Double":   Double,
	"Integer":  Integer,
	"Int32":    Int32,
	"Int64":    Int64,
	"Boolean":  Boolean,
}

// PrimitiveByName looks up a primitive by its constructor name, e.g. "Int64".
// Path template annotations such as {id:Int64} are resolved with it.
func PrimitiveByName(name string) (Primitive, bool) {
	f, ok := primitivesByName[name]
	if !ok {
		return Primitive{}, false
	}
	return f(), true
}
