// @title           kardash API
// @version         1.0
// @description     API платформы агрегации фриланс-заказов.
// @host            localhost:4000
// @BasePath        /

package main

import "kardash_backend/internal/app"

func main() {
	app.Run()
}
