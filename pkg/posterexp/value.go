package posterexp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PriceUnit 是 formatPrice 追加的金额单位。
const PriceUnit = "万"

// undefined 是缺失字段参与字符串比较时的文本形式。
const undefined = "undefined"

// Record 是一次展开使用的扁平数据记录。
//
// 值应为标量：数字、字符串、布尔或 nil。
type Record map[string]any

// Lookup 读取字段，nil 记录视为空记录。
func Lookup(data Record, field string) (any, bool) {
	if data == nil {
		return nil, false
	}
	v, ok := data[field]

	return v, ok
}

// Truthy 判断值的真假。
//
// 假值：nil、false、""、0、NaN；其余均为真。
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return x != ""
		}
		return f != 0
	default:
		return true
	}
}

// Stringify 返回值的默认字符串形式。
//
// 整数按十进制输出，浮点数取最短十进制表示（1.5、268），
// 布尔为 true/false，nil 为 null。
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// -0 同样输出 "0"
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		return formatExponent(f, bitSize)
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// formatExponent 输出最短指数形式，指数不补零：1e+21、1.5e-7。
func formatExponent(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}

	return mantissa + "e" + sign + digits
}

// FormatPrice 将值格式化为带千分位的金额文本并追加 [PriceUnit]。
//
// 假值按 0 处理。分组作用于整个字符串：凡是前一个字符为单词字符、
// 且从当前位置起连续数字的长度为 3 的倍数，就在当前位置前插入逗号。
//
//	FormatPrice(12345) // "12,345万"
//	FormatPrice(nil)   // "0万"
func FormatPrice(v any) string {
	if !Truthy(v) {
		v = 0
	}

	return groupThousands(Stringify(v)) + PriceUnit
}

func groupThousands(s string) string {
	if len(s) < 4 {
		return s
	}

	// runs[i] 为 s[i:] 开头的连续数字个数
	runs := make([]int, len(s)+1)
	for i := len(s) - 1; i >= 0; i-- {
		if isDigit(s[i]) {
			runs[i] = runs[i+1] + 1
		}
	}

	var buf strings.Builder
	buf.Grow(len(s) + len(s)/3)
	buf.WriteByte(s[0])
	for i := 1; i < len(s); i++ {
		if runs[i] > 0 && runs[i]%3 == 0 && isWordChar(s[i-1]) {
			buf.WriteByte(',')
		}
		buf.WriteByte(s[i])
	}

	return buf.String()
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || isDigit(ch) || ch == '_'
}
