package routes

import (
	"mergington-activities/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activity API
func activityRoutes(app *fiber.App, ac *controllers.ActivityController) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", ac.GetActivities)                         // ดึงกิจกรรมทั้งหมด
	activityRoutes.Post("/:name/signup", ac.SignupForActivity)        // ลงทะเบียน
	activityRoutes.Delete("/:name/signup", ac.UnregisterFromActivity) // ยกเลิกการลงทะเบียน
}
