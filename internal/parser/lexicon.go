package parser

import "jizhang/internal/core"

// The lexical tables are loaded once and never mutated. Iteration order is
// significant: the first category whose keyword appears in the text wins,
// so the table is a slice rather than a map.

type categoryEntry struct {
	category core.Category
	keywords []string
}

var categoryTable = []categoryEntry{
	{core.CategoryFood, []string{
		"饭", "吃", "餐厅", "食堂", "外卖", "零食", "饮料", "咖啡", "奶茶", "早餐", "午餐", "晚餐",
		"宵夜", "聚餐", "宴请", "买菜", "生鲜", "水果", "超市", "烧烤", "火锅", "炸鸡",
	}},
	{core.CategoryTransport, []string{
		"打车", "滴滴", "出租", "公交", "地铁", "火车", "高铁", "飞机", "机票", "汽油", "油费",
		"停车", "高速", "网约车", "车费", "交通",
	}},
	{core.CategoryShopping, []string{
		"买", "购", "商城", "淘宝", "京东", "拼多多", "网购", "衣服", "鞋子", "包包", "化妆品",
		"护肤品", "数码", "电脑", "手机", "家电", "家具", "日用品", "百货",
	}},
	{core.CategoryEntertainment, []string{
		"电影", "游戏", "KTV", "酒吧", "夜店", "游乐场", "景点", "旅游", "度假", "酒店", "演唱会",
		"票", "娱乐", "休闲",
	}},
	{core.CategoryHousing, []string{
		"房租", "水电", "燃气", "物业", "宽带", "话费", "网费", "装修", "维修", "居住",
	}},
	{core.CategoryMedical, []string{
		"医院", "药店", "药", "看病", "体检", "医疗", "治疗", "挂号", "检查",
	}},
	{core.CategoryEducation, []string{
		"书", "课程", "培训", "学习", "学费", "考试", "资料", "教育",
	}},
}

type timeConcept int

const (
	timeToday timeConcept = iota
	timeYesterday
	timeDayBeforeYesterday
	timeThisWeek
	timeLastWeek
	timeThisMonth
	timeLastMonth
)

type timeEntry struct {
	concept  timeConcept
	keywords []string
}

var timeTable = []timeEntry{
	{timeToday, []string{"今天", "今日"}},
	{timeYesterday, []string{"昨天", "昨日"}},
	{timeDayBeforeYesterday, []string{"前天"}},
	{timeThisWeek, []string{"本周", "这周"}},
	{timeLastWeek, []string{"上周"}},
	{timeThisMonth, []string{"本月", "这个月", "这月"}},
	{timeLastMonth, []string{"上月", "上个月"}},
}

// fillerWords are verbs and connectives stripped during note extraction.
var fillerWords = []string{"花了", "付了", "消费了", "用了", "是", "和", "一起", "跟", "同"}

// defaultNotes replace residuals that are too short to be meaningful.
var defaultNotes = map[core.Category]string{
	core.CategoryFood:          "餐饮消费",
	core.CategoryTransport:     "交通出行",
	core.CategoryShopping:      "购物消费",
	core.CategoryEntertainment: "娱乐消费",
	core.CategoryHousing:       "居住支出",
	core.CategoryMedical:       "医疗支出",
	core.CategoryEducation:     "教育支出",
	core.CategoryOther:         "其他支出",
}
