package lookup

// OperatorFunctionName returns the canonical symbol-table name for an
// operator-function-id over the given operator token, e.g. "+" becomes
// "operator +" and "[]" becomes "operator []".
func OperatorFunctionName(token string) string {
	return "operator " + token
}

// ConversionFunctionName returns the canonical symbol-table name for a
// conversion-function-id targeting the type spelled targetSpelling, e.g.
// "operator bool".
func ConversionFunctionName(targetSpelling string) string {
	return "operator " + targetSpelling
}

// DestructorName returns the canonical symbol-table name for a
// destructor-id over a class named className, e.g. "~X".
func DestructorName(className string) string {
	return "~" + className
}
