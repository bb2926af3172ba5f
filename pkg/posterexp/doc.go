// Package posterexp 提供海报 HTML 模板的指令展开。
//
// 模板是夹杂 {{...}} 指令的普通文本，数据是扁平的键值记录。
// 展开是纯函数：不读写外部状态、不修改记录、永不返回错误。
//
// # 指令
//
//   - {{formatPrice price}} - 千分位格式化并追加 "万"
//   - {{#if hasParking}}...{{/if}} - 真值条件块
//   - {{#ifCond taxFree '==' 'true'}}...{{/ifCond}} - 字符串相等/不等比较
//   - {{area}} - 变量替换
//
// # 语义说明
//
//  1. 四类指令按上述顺序各自完整扫描一遍，顺序固定
//  2. 条件块命中后，块内内容以同一份记录递归展开
//  3. 0、NaN、""、false、nil 与缺失字段均为假值
//  4. 未知变量保留原样；格式化与条件指令把缺失字段当作假值
//  5. 无法识别或未闭合的指令保持原样
//
// # 快速开始
//
//	html := `<span>{{formatPrice price}}</span>{{#if hasParking}}<i>车位</i>{{/if}}`
//	out := posterexp.Expand(html, posterexp.Record{"price": 268, "hasParking": true})
//	// <span>268万</span><i>车位</i>
//
// 详见 [Expand] 文档。
package posterexp
