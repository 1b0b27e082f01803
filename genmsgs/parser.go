package genmsgs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	sep         = "/"
	constChar   = "="
	commentChar = "#"
	srvDelim    = "---"
)

// SyntaxError reports a malformed line in a schema definition.
type SyntaxError struct {
	FullName string
	Line     int
	Message  string
}

func newSyntaxError(fullName string, line int, message string) *SyntaxError {
	return &SyntaxError{FullName: fullName, Line: line, Message: message}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[%s@%d] %s", e.FullName, e.Line, e.Message)
}

var resourceNamePattern = regexp.MustCompile(`^[A-Za-z][\w_\/]*$`)

func isLegalResourceBaseName(name string) bool {
	if strings.Contains(name, "//") {
		return false
	}
	return resourceNamePattern.MatchString(name)
}

func isValidFieldName(name string) bool {
	return isLegalResourceBaseName(name)
}

func isValidConstantType(t string) bool {
	return isPrimitiveType(t)
}

func baseMsgType(t string) string {
	if index := strings.Index(t, "["); index >= 0 {
		return t[:index]
	}
	return t
}

func splitType(t string) (string, string) {
	components := strings.Split(t, sep)
	if len(components) == 1 {
		return "", t
	}
	return components[0], components[1]
}

func packageResourceName(name string) (string, string, error) {
	if !strings.Contains(name, sep) {
		return "", name, nil
	}
	components := strings.Split(name, sep)
	if len(components) != 2 {
		return "", "", fmt.Errorf("invalid resource name %s", name)
	}
	return components[0], components[1], nil
}

func parseType(msgType string) (pkg string, baseType string, isArray bool, arrayLen int, err error) {
	index := strings.Index(msgType, "[")
	if index < 0 {
		pkg, name := splitType(msgType)
		return pkg, name, false, 0, nil
	}
	if msgType[len(msgType)-1] != ']' {
		return "", msgType, false, 0, fmt.Errorf("missing ']' in %s", msgType)
	}
	pkg, name := splitType(msgType[:index])
	rest := msgType[index:]
	if rest == "[]" {
		return pkg, name, true, -1, nil
	}
	value, err := strconv.ParseInt(rest[1:len(rest)-1], 10, 32)
	if err != nil {
		return pkg, name, false, 0, err
	}
	return pkg, name, true, int(value), nil
}

func isValidMsgType(t string) bool {
	if t != strings.TrimSpace(t) {
		return false
	}
	base := baseMsgType(t)
	if !isLegalResourceBaseName(base) {
		return false
	}
	// Whatever follows the base type must be balanced digit-only brackets.
	state := 0
	for _, c := range t[len(base):] {
		if state == 0 {
			if c != '[' {
				return false
			}
			state = 1
		} else {
			if c == ']' {
				state = 0
			} else if !unicode.IsDigit(c) {
				return false
			}
		}
	}
	return state == 0
}

func stripComment(line string) string {
	return strings.TrimSpace(strings.Split(line, commentChar)[0])
}

// convertConstantValue parses a constant literal into the matching Go value.
// Bool literals follow the ROS genmsg convention, which also admits Python
// literals and bare integers.
func convertConstantValue(fieldType string, valueLiteral string) (interface{}, error) {
	switch fieldType {
	case "float32":
		result, e := strconv.ParseFloat(valueLiteral, 32)
		return float32(result), e
	case "float64":
		return strconv.ParseFloat(valueLiteral, 64)
	case "string":
		return strings.TrimSpace(valueLiteral), nil
	case "byte", "int8":
		result, e := strconv.ParseInt(valueLiteral, 0, 8)
		return int8(result), e
	case "int16":
		result, e := strconv.ParseInt(valueLiteral, 0, 16)
		return int16(result), e
	case "int32":
		result, e := strconv.ParseInt(valueLiteral, 0, 32)
		return int32(result), e
	case "int64":
		return strconv.ParseInt(valueLiteral, 0, 64)
	case "char", "uint8":
		result, e := strconv.ParseUint(valueLiteral, 0, 8)
		return uint8(result), e
	case "uint16":
		result, e := strconv.ParseUint(valueLiteral, 0, 16)
		return uint16(result), e
	case "uint32":
		result, e := strconv.ParseUint(valueLiteral, 0, 32)
		return uint32(result), e
	case "uint64":
		return strconv.ParseUint(valueLiteral, 0, 64)
	case "bool":
		if valueLiteral == "None" || valueLiteral == "False" {
			return false, nil
		} else if valueLiteral == "True" {
			return true, nil
		} else if val, e := strconv.ParseUint(valueLiteral, 10, 0); e == nil {
			return val != 0, nil
		}
		return nil, fmt.Errorf("invalid constant literal for bool: [%s]", valueLiteral)
	default:
		return nil, fmt.Errorf("invalid constant type: [%s]", fieldType)
	}
}

func loadConstantLine(line string) (*Constant, error) {
	cleanLine := stripComment(line)
	sepIndex := strings.IndexFunc(cleanLine, unicode.IsSpace)
	if sepIndex < 0 {
		return nil, fmt.Errorf("could not find a constant name after the type name")
	}

	fieldType := cleanLine[:sepIndex]
	if !isValidConstantType(fieldType) {
		return nil, fmt.Errorf("[%s] is not a legal constant type", fieldType)
	}

	var name, valueText string
	if fieldType == "string" {
		// String constants take everything right of the equal sign;
		// no comments apply.
		sepIndex := strings.IndexFunc(line, unicode.IsSpace)
		if sepIndex < 0 {
			return nil, fmt.Errorf("could not find a constant name after the type name")
		}
		kvSplits := strings.SplitN(line[sepIndex:], constChar, 2)
		if len(kvSplits) != 2 {
			return nil, fmt.Errorf("a constant definition requires its value")
		}
		name = strings.TrimSpace(kvSplits[0])
		valueText = strings.TrimLeftFunc(kvSplits[1], unicode.IsSpace)
	} else {
		kvSplits := strings.SplitN(strings.TrimSpace(cleanLine[sepIndex:]), constChar, 2)
		if len(kvSplits) != 2 {
			return nil, fmt.Errorf("a constant definition requires its value")
		}
		name = strings.TrimSpace(kvSplits[0])
		valueText = strings.TrimSpace(kvSplits[1])
	}

	value, err := convertConstantValue(fieldType, valueText)
	if err != nil {
		return nil, err
	}
	return NewConstant(fieldType, name, value, valueText), nil
}

func loadFieldLine(line string, packageName string) (*Field, error) {
	cleanLine := stripComment(line)
	lineSplits := strings.SplitN(cleanLine, " ", 2)
	if len(lineSplits) != 2 {
		return nil, fmt.Errorf("invalid declaration: %s", line)
	}
	fieldType := strings.TrimSpace(lineSplits[0])
	name := strings.TrimSpace(lineSplits[1])
	if !isValidFieldName(name) {
		return nil, fmt.Errorf("%s is not a legal message field name", name)
	}
	if !isValidMsgType(fieldType) {
		return nil, fmt.Errorf("%s is not a legal message field type", fieldType)
	}
	// Relative type names refer to the declaring package; the bare Header
	// shorthand always refers to std_msgs.
	if fieldType == HeaderType {
		fieldType = HeaderFullName
	} else if len(packageName) > 0 && !strings.Contains(fieldType, sep) &&
		!isBuiltinType(baseMsgType(fieldType)) {
		fieldType = packageName + sep + fieldType
	}
	pkg, baseType, isArray, arrayLen, err := parseType(fieldType)
	if err != nil {
		return nil, err
	}
	return NewField(pkg, baseType, name, isArray, arrayLen), nil
}
