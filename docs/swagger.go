// Package docs Itinerary Microservice API.
//
// Микросервис рекомендаций многодневных маршрутов поездок.
// Строит маршрут по предпочтениям пользователя: скоринг достопримечательностей
// обученными моделями, контекстная корректировка по погоде и трафику,
// кластеризация, маршрутизация, отбор по бюджету, раскладка по дням
// и подбор отелей. Отдельный контур оценивает риск посещения локаций.
//
// Основные возможности:
// - Построение многодневного маршрута с бюджетными ограничениями
// - Предсказание суммарного времени и бюджета поездки
// - Подбор отелей вокруг центра маршрута и по дням
// - Оценка риска локаций (скор, категория, факторы, рекомендации)
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
