package geo

import "math"

// EarthRadiusKm - радиус Земли в километрах для формулы гаверсинусов
const EarthRadiusKm = 6371.0

// HaversineKm вычисляет расстояние по дуге большого круга между двумя точками
// (широта/долгота в градусах), результат в километрах
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// BoundingBox - прямоугольник координат для префильтра в SQL.
// Точный отбор по расстоянию делается уже в коде сервиса
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// BoxAround строит ограничивающий прямоугольник вокруг точки с запасом radiusKm.
// Вблизи полюсов и антимеридиана прямоугольник расширяется до полного диапазона
// долгот - префильтр имеет право быть грубым, но не имеет права терять строки
func BoxAround(lat, lng, radiusKm float64) BoundingBox {
	dLat := (radiusKm / EarthRadiusKm) * (180 / math.Pi)

	box := BoundingBox{
		MinLat: math.Max(lat-dLat, -90),
		MaxLat: math.Min(lat+dLat, 90),
		MinLng: -180,
		MaxLng: 180,
	}

	cosLat := math.Cos(radians(lat))
	if cosLat < 1e-6 {
		return box
	}

	dLng := dLat / cosLat
	if dLng >= 180 || lng-dLng < -180 || lng+dLng > 180 {
		return box
	}

	box.MinLng = lng - dLng
	box.MaxLng = lng + dLng
	return box
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
