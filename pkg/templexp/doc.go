// Package templexp 提供配置文件中 ${...} 形式的 Shell 参数展开。
//
// 只处理 ${...}，不解析 $VAR，不执行命令。
// 典型用途是在配置里拼接路径：
//
//	template:
//	  dir: "${POSTER_ROOT:-.}/templates"
//	output:
//	  dir: "${HOME}/posters"
//
// # 语义说明
//
//  1. 变量来自本次展开开始时的环境变量快照
//  2. 默认值与替代值可以继续嵌套 ${...}
//  3. "$$" 输出字面量 "$"
//  4. ":=" 只写入快照，不修改进程环境
//  5. 无法识别的表达式保持原样
//
// 详见 [ExpandTemplate] 文档。
package templexp
