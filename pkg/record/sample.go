package record

import "github.com/lwmacct/251014-go-pkg-poster/pkg/posterexp"

// Sample 返回一份房源示例记录，用于预览模板。
func Sample() posterexp.Record {
	return posterexp.Record{
		"price":        268,      // 总价（万元）
		"area":         89,       // 面积（平米）
		"gift":         15,       // 赠送面积（平米）
		"layout":       "3室2厅3室", // 户型
		"decoration":   "精装",     // 装修
		"hasParking":   true,     // 是否有车位
		"parkingPrice": 25,       // 车位价格（万元）
		"extraArea":    12,       // 附加面积（平米）
		"floor":        "15/30",  // 楼层
		"taxFree":      "true",   // 是否免税
	}
}
