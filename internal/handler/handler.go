package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/meddent-dev/booking/backend/internal/config"
	"github.com/meddent-dev/booking/backend/internal/domain"
	"github.com/meddent-dev/booking/backend/internal/engine"
	"github.com/meddent-dev/booking/backend/internal/refdata"
	"github.com/meddent-dev/booking/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	catalog     *refdata.Catalog
	engine      *engine.Engine
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, catalog *refdata.Catalog, eng *engine.Engine, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		catalog:     catalog,
		engine:      eng,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// staff authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	h.Mux.Route("/api", func(r chi.Router) {
		// static reference data, read-only
		r.Route("/data", func(r chi.Router) {
			r.Get("/clinics", h.GetClinics)
			r.Get("/doctors", h.GetDoctors)
			r.Get("/procedures", h.GetProcedures)
			r.Get("/specializations", h.GetSpecializations)
		})

		// slot search and booking are what the chat assistant drives, so
		// they stay open to unauthenticated patients
		r.Get("/slots", h.FindSlots)
		r.Post("/bookings", h.CreateBooking)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.myInfo)
			r.Get("/me", h.GetMyInfo)
		})

		r.Route("/appointments", func(r chi.Router) {
			// the calendar view reads these without signing in
			r.Get("/week", h.GetAppointmentsForWeek)
			r.Get("/date/{date}", h.GetAppointmentsForDate)

			// everything else is the admin dashboard
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Use(h.RequiredRole([]domain.StaffRole{domain.RoleReceptionist, domain.RoleAdmin}))
				r.Get("/", h.ListAppointments)
				r.Get("/stats", h.GetAppointmentStats)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.appointmentCtx)
					r.Get("/", h.GetAppointment)
					r.Patch("/status", h.UpdateAppointmentStatus)
					r.Delete("/", h.CancelAppointment)
				})
			})
		})
	})
}

// publishMail serializes a mail message onto the shared email queue. The mail
// worker picks it up out of process.
func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
