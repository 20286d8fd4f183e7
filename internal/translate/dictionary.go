package translate

// dictionary is the builtin English → Traditional Chinese word list,
// covering the vocabulary a primary-school learner meets most often
var dictionary = map[string]string{
	// animals
	"cat": "貓", "dog": "狗", "elephant": "大象", "bird": "鳥", "fish": "魚",
	"rabbit": "兔子", "horse": "馬", "cow": "牛", "pig": "豬", "chicken": "雞",

	// food
	"apple": "蘋果", "banana": "香蕉", "bread": "麵包", "milk": "牛奶",
	"egg": "雞蛋", "rice": "米飯", "meat": "肉", "fruit": "水果",
	"vegetable": "蔬菜",

	// things and places
	"house": "房子", "school": "學校", "book": "書", "water": "水",
	"sun": "太陽", "moon": "月亮", "star": "星星", "tree": "樹",
	"flower": "花", "car": "汽車", "bicycle": "自行車", "pen": "筆",
	"pencil": "鉛筆", "table": "桌子", "chair": "椅子", "bed": "床",
	"window": "窗戶", "door": "門",

	// colours
	"red": "紅色", "blue": "藍色", "green": "綠色", "yellow": "黃色",
	"orange": "橙色", "purple": "紫色", "pink": "粉色", "black": "黑色",
	"white": "白色",

	// feelings and adjectives
	"friend": "朋友", "happy": "快樂", "sad": "傷心", "love": "愛",
	"big": "大的", "small": "小的", "hot": "熱的", "cold": "冷的",
	"good": "好的", "bad": "壞的",

	// body
	"head": "頭", "eye": "眼睛", "nose": "鼻子", "mouth": "嘴巴",
	"hand": "手", "foot": "腳",
}
