package flow

// Button labels shared between prompt rendering and the transport
// adapter's intent decoding.
const (
	BackLabel    = "🔙 Орқага"
	NextLabel    = "➡️ Кейинги"
	PrevLabel    = "⬅️ Олдинги"
	CargoLabel   = "📦 Почта бор"
	ContactLabel = "📱 Телефонни улашиш"
	SkipLabel    = "-"
)

const (
	promptPhone         = "📱 Телефон рақамингизни юборинг.\nҚулайлик учун қуйидаги тугмадан фойдаланинг:"
	promptOriginCity    = "🧭 Қайси шаҳардан жўнайсиз?"
	promptDestCity      = "🏁 Қайси шаҳарга борасиз?"
	promptPickup        = "🚏 Qaysi hududdan sizni olib ketamiz?"
	promptDrop          = "🏁 Qaysi hududga borasiz?"
	promptDistricts     = "— ҳудудни танланг!"
	promptDistrictFree  = "✍️ Ҳудуд номини ёзинг (2-60 белги):"
	promptChoice        = "👥 Одам сонини танланг ёки «📦 Почта бор» ни босинг:"
	promptNote          = "📝 Изоҳ қолдиринг ёки «-» ни босинг:"
	errPhone            = "❗️ Телефон нотўғри. +99890XXXXXXX кўринишида ёзинг ёки тугмадан фойдаланинг."
	errCityUnknown      = "❗️ Илтимос, рўйхатдан танланг."
	errCitySame         = "❗️ Бориш шаҳри жўнаш шаҳридан фарқ қилиши керак."
	errDistrictFree     = "❗️ Ҳудуд номи 2-60 белги бўлиши керак."
	errChoice           = "❗️ 1,2,3,4,5+ ёки «📦 Почта бор»."
	errNote             = "❗️ Изоҳ 350 белгидан ошмасин. «-» — изоҳсиз."
	msgCanceled         = "❌ Бекор қилинди. /start"
	msgIdleHint         = "Янги буюртма учун /start ни босинг."
	msgAcceptedPending  = "🕓 Буюртмангиз қабул қилинди, тасдиқлаш бироз кечикиши мумкин. Оператор сиз билан боғланади."
)
