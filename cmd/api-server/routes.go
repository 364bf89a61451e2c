package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shelterops/shelter-api/docs"
	"github.com/shelterops/shelter-api/internal/model"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (app *application) configureSwagger() {
	docs.SwaggerInfo.Title = "Animal Shelter"
	docs.SwaggerInfo.Description = "Web API - Animal Shelter"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmtHTTPAddr("localhost", app.config.httpPort)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}
}

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)
	mux.Use(app.authenticate)

	mux.Get("/api/v1/status", app.handleStatus)

	mux.Post("/api/v1/user/signup", app.handleSignup)
	mux.Post("/api/v1/user/signin", app.handleSignin)
	mux.Post("/api/v1/user/logout", app.handleLogout)

	mux.Get("/api/v1/animals", app.handleListAnimals)
	mux.Get("/api/v1/animals/{animalId}", app.handleGetAnimal)
	mux.Get("/api/v1/animals/{animalId}/photo", app.handleAnimalPhoto)

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireAuthenticated)

		mux.Post("/api/v1/user/logout/all", app.handleLogoutAll)
		mux.Get("/api/v1/user/profile", app.handleProfile)
		mux.Post("/api/v1/user/password", app.handleChangePassword)
		mux.Post("/api/v1/user/volunteer-application", app.handleSubmitApplication)
		mux.Post("/api/v1/user/animals/{animalId}/adoption", app.handleSubmitAdoption)
	})

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireRole(model.RoleAdmin))

		mux.Get("/api/v1/admin/users", app.handleListUsers)
		mux.Patch("/api/v1/admin/users/{userId}/state", app.handleUpdateUserState)
		mux.Patch("/api/v1/admin/users/{userId}/role", app.handleUpdateUserRole)
		mux.Delete("/api/v1/admin/users/{userId}", app.handleDeleteUser)
	})

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireRole(model.RoleStaff))

		mux.Post("/api/v1/staff/animals", app.handleAddAnimal)
		mux.Patch("/api/v1/staff/animals/{animalId}", app.handleUpdateAnimal)
		mux.Delete("/api/v1/staff/animals/{animalId}", app.handleDeleteAnimal)

		mux.Get("/api/v1/staff/walk-requests", app.handleListWalkRequests)
		mux.Post("/api/v1/staff/walk-requests/{walkId}/{action}", app.handleWalkAction)

		mux.Get("/api/v1/staff/adoption-requests", app.handleListAdoptions)
		mux.Post("/api/v1/staff/adoption-requests/{requestId}/accept", app.handleAcceptAdoption)
		mux.Post("/api/v1/staff/adoption-requests/{requestId}/reject", app.handleRejectAdoption)

		mux.Get("/api/v1/staff/volunteer-applications", app.handleListApplications)
		mux.Post("/api/v1/staff/volunteer-applications/{requestId}/accept", app.handleAcceptApplication)
		mux.Post("/api/v1/staff/volunteer-applications/{requestId}/reject", app.handleRejectApplication)

		mux.Post("/api/v1/staff/animals/{animalId}/vet-request", app.handleSubmitVetRequest)
	})

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireRole(model.RoleVet))

		mux.Get("/api/v1/vet/requests", app.handleListVetRequests)
		mux.Post("/api/v1/vet/requests/{requestId}/accept", app.handleAcceptVetRequest)
		mux.Post("/api/v1/vet/requests/{requestId}/complete", app.handleCompleteVetRequest)

		mux.Get("/api/v1/vet/animals/{animalId}/medical-history", app.handleGetMedicalHistory)
		mux.Post("/api/v1/vet/animals/{animalId}/medical-history", app.handleCreateMedicalHistory)
		mux.Post("/api/v1/vet/animals/{animalId}/treatments", app.handleAddTreatment)
		mux.Post("/api/v1/vet/animals/{animalId}/vaccinations", app.handleAddVaccination)
	})

	mux.Group(func(mux chi.Router) {
		mux.Use(app.requireRole(model.RoleVolunteer))

		mux.Post("/api/v1/volunteer/animals/{animalId}/reserve", app.handleReserveWalks)
		mux.Get("/api/v1/volunteer/animals/{animalId}/scheduled-walks", app.handleScheduledWalks)
		mux.Get("/api/v1/volunteer/history", app.handleWalkHistory)
		mux.Delete("/api/v1/volunteer/walks/{walkId}/cancel", app.handleCancelWalk)
	})

	mux.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(
			"http://"+fmtHTTPAddr("localhost", app.config.httpPort)+"/swagger/doc.json",
		), // The url pointing to API definition
	))

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
