// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

package engine

import "fmt"

// Fashion advice temperature bands in degrees Celsius, coldest first.
const (
	tempBandCold = 15
	tempBandCool = 20
	tempBandMild = 25
)

// clothingForTemp returns the clothing guidance for a temperature band.
func clothingForTemp(tempC float64) string {
	switch {
	case tempC < tempBandCold:
		return "Trời khá lạnh, bạn nên mặc áo khoác dày, khăn choàng và mang theo găng tay. Buổi tối Đà Lạt có thể xuống thấp hơn nữa."
	case tempC < tempBandCool:
		return "Trời se lạnh, một chiếc áo khoác nhẹ hoặc áo len là đủ ấm. Nên mang thêm áo ấm cho buổi tối."
	case tempC < tempBandMild:
		return "Thời tiết dễ chịu, bạn có thể mặc áo dài tay mỏng hoặc áo thun kèm áo khoác nhẹ phòng khi trở lạnh."
	default:
		return "Trời ấm, trang phục thoáng mát là phù hợp. Vẫn nên mang theo một chiếc áo khoác mỏng vì Đà Lạt trở lạnh nhanh về chiều tối."
	}
}

// gearForWeather returns the weather-specific gear note appended to the
// clothing guidance.
var gearForWeather = map[WeatherClass]string{
	WeatherRainy:  "Trời đang mưa, nhớ mang theo ô hoặc áo mưa và chọn giày chống trượt.",
	WeatherCloudy: "Trời nhiều mây, nên mang theo áo khoác phòng mưa bất chợt.",
	WeatherSunny:  "Trời nắng, nhớ mang kính râm, mũ và thoa kem chống nắng.",
	WeatherClear:  "Trời quang đãng, rất hợp để chụp ảnh ngoài trời. Mang theo kính râm nếu đi ban ngày.",
}

// fashionAdvice composes the full what-to-wear text for a reading.
func fashionAdvice(class WeatherClass, tempC float64) string {
	return fmt.Sprintf("Nhiệt độ hiện tại khoảng %.0f°C. %s %s",
		tempC, clothingForTemp(tempC), gearForWeather[class])
}

// activityAdvice holds the fixed what-to-do text block for each canonical
// weather class.
var activityAdvice = map[WeatherClass]string{
	WeatherRainy: "Trời đang mưa, bạn nên chọn các hoạt động trong nhà: " +
		"thưởng thức cà phê trong những quán ấm cúng, tham quan bảo tàng, " +
		"hoặc thử các món nóng ở nhà hàng và chợ Đà Lạt.",
	WeatherSunny: "Trời nắng đẹp, rất hợp để khám phá ngoài trời: " +
		"tham quan các thác nước, đồi chè, vườn hoa, hoặc leo núi Langbiang " +
		"ngắm toàn cảnh thành phố.",
	WeatherCloudy: "Trời nhiều mây, tiết trời mát mẻ dễ chịu: " +
		"bạn có thể dạo quanh hồ Xuân Hương, ghé các quán cà phê view đẹp, " +
		"hoặc đi săn mây ở các đồi quanh thành phố.",
	WeatherClear: "Trời quang đãng, thích hợp ngắm cảnh và chụp ảnh: " +
		"lên các điểm ngắm toàn cảnh, tham quan vườn hoa thành phố, " +
		"hoặc cắm trại ngoài trời khi về chiều.",
}
