package catalog

import "strings"

// Static reference data for the supported cities and their districts.
// Loaded once, never mutated after init, so no locking is needed.

const (
	CityToshkent = "Тошкент"
	CityQoqon    = "Қўқон"
)

var cities = []string{CityQoqon, CityToshkent}

var qoqonDistricts = []string{
	"Қўқон шахар", "Янгибозор/Опт", "Янгибозор 65", "Навоий", "Урганжибоғ", "Янгичорсу", "Чорсу",
	"Космонавт", "Химик", "Вокзал", "Бабушкин", "Тўҳлимерган", "Дегрезлик", "Гор/Ҳокимият",
	"Гор/Дилшод", "Гор больница", "Чархий", "Ғозиёғлиқ", "Романка", "Азиз тепа", "Ғишткўприк",
	"Спортивный", "Водоканал", "40 лет", "Зелённый", "ЧПК", "Гор. отдель", "Большевик",
	"Ғиштли масжид", "Минг тут", "Автовокзал", "МЖК", "Калвак", "Арчазор", "Горгаз", "Шиша бозор",
	"Саодат масжиди", "Тулабой", "Данғара", "Учкўприк", "Бака чорсу", "Динам", "Сарботир",
	"Найманча", "Мяс комбинат", "Мел комбинат", "Городской", "Айрилиш", "10 автобаза",
	"Пед колледж", "Ипак йўли", "Ярмарка", "Авғонбоқ", "Охак бозор", "Автодарож", "Городок",
	"Ойим қишлоқ", "Аерапорт", "Қўқонбой", "Оқ жар",
}

var toshkentDistricts = []string{
	"Абу сахий", "Авиасозлар 22", "Авиасозлар 4", "Аерапорт", "Ахмад", "Ахмад олтин жужа",
	"Алгаритим", "Алмалик", "Амир Темур сквер", "Ангрен", "Ашхабод боғи", "Бек барака",
	"Беруний Метро", "Битонка", "Болалар миллий тиббиёт", "Буюк ипак йули метро", "ВОДНИК",
	"Ғишт кўприк чегара", "Ғофур Ғулом метро", "Ғунча", "Дўстлик метро", "Еркин мост", "Жангох",
	"Жарарик", "Зангота Зиёратгоҳ", "Жоме масжид", "Ибн сино 1", "Ипадром", "Камолон",
	"Кардиалогия маркази", "Кафе квартал", "Келес", "Корасув",
	"Косманавтлар метро", "Кока кола завод", "Куйлюк 1", "Куйлюк 2", "Куйлюк 4", "Куйлюк 5",
	"Куйлюк 6", "Курувчи", "Миробод Бозори", "Миробод тумани", "Мирзо Улугбек", "Минор метро",
	"Минг урик", "Маъруф ота масжиди", "Машинасозлар метро", "Межик ситий", "Миллий боғ метро",
	"Мустақиллик майдони", "Навоий куча", "Некст маал", "Олмазор", "Олмалик", "Охангарон",
	"Олой бозори", "Олим полвон", "Панелний", "Паркент Бозори", "Паркент тумани", "Перевал",
	"Рохат", "Сағбон", "Себзор", "Сергили", "Сергили 6", "Северный вогзал", "Солношка",
	"Собир Рахимов", "Тахтапул", "Ташкент ситий", "ТТЗ бозор", "Фаргона йули", "Фарход бозори",
	"Фууд ситий", "Хадра майдони", "Халқлар дўстлиги", "Хайвонот боги", "Хумо Арена", "Чигатой",
	"Чилонзор", "Чирчиқ", "Чорсу", "Чупон ота", "Шайхон Тохур", "Шаршара",
	"Шота Руставили", "Янги бозор", "Янги йул", "Янги Чош Тепа", "Янги обод бозор",
	"Янгиобод бозори", "Яланғоч", "Яшинобод тумани", "Яккасарой", "Ёшлик метро", "Юнусобод",
	"Южный вогзал", "Қушбеги", "Қўйлиқ 5", "Центр Бешкозон", "Центрланый парк",
}

var districtsByCity = map[string][]string{
	CityQoqon:    qoqonDistricts,
	CityToshkent: toshkentDistricts,
}

// Cities returns the supported city names in presentation order.
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// IsCity reports whether name is a supported city.
func IsCity(name string) bool {
	_, ok := districtsByCity[name]
	return ok
}

// DistrictsFor returns the ordered district list for a city. An empty
// result means the city has no catalog and district names are captured
// as free text.
func DistrictsFor(city string) []string {
	return districtsByCity[city]
}

// Common latin/cyrillic spellings users type instead of the canonical
// city name.
var cityVariants = map[string]string{
	"ташкент":  CityToshkent,
	"тошкент":  CityToshkent,
	"toshkent": CityToshkent,
	"tashkent": CityToshkent,
	"қўқон":    CityQoqon,
	"кўкон":    CityQoqon,
	"кокон":    CityQoqon,
	"qo‘qon":   CityQoqon,
	"qo'qon":   CityQoqon,
	"qoqon":    CityQoqon,
}

// Normalize maps a typed city name onto its canonical catalog form.
// Unknown input is returned trimmed and otherwise untouched.
func Normalize(name string) string {
	t := strings.TrimSpace(name)
	if c, ok := cityVariants[strings.ToLower(t)]; ok {
		return c
	}
	return t
}

// HasDistrict reports whether name is a catalog district of city.
func HasDistrict(city, name string) bool {
	for _, d := range districtsByCity[city] {
		if d == name {
			return true
		}
	}
	return false
}
