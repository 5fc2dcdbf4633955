package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/jwalitptl/hospital-api/internal/config"
	"github.com/jwalitptl/hospital-api/internal/handler"
	admissionHandler "github.com/jwalitptl/hospital-api/internal/handler/admission"
	appointmentHandler "github.com/jwalitptl/hospital-api/internal/handler/appointment"
	billingHandler "github.com/jwalitptl/hospital-api/internal/handler/billing"
	departmentHandler "github.com/jwalitptl/hospital-api/internal/handler/department"
	directoryHandler "github.com/jwalitptl/hospital-api/internal/handler/directory"
	doctorHandler "github.com/jwalitptl/hospital-api/internal/handler/doctor"
	nurseHandler "github.com/jwalitptl/hospital-api/internal/handler/nurse"
	patientHandler "github.com/jwalitptl/hospital-api/internal/handler/patient"
	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository/sqlite"
	"github.com/jwalitptl/hospital-api/internal/router"
	admissionService "github.com/jwalitptl/hospital-api/internal/service/admission"
	appointmentService "github.com/jwalitptl/hospital-api/internal/service/appointment"
	billingService "github.com/jwalitptl/hospital-api/internal/service/billing"
	departmentService "github.com/jwalitptl/hospital-api/internal/service/department"
	directoryService "github.com/jwalitptl/hospital-api/internal/service/directory"
	doctorService "github.com/jwalitptl/hospital-api/internal/service/doctor"
	nurseService "github.com/jwalitptl/hospital-api/internal/service/nurse"
	patientService "github.com/jwalitptl/hospital-api/internal/service/patient"
	"github.com/jwalitptl/hospital-api/pkg/logger"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
	"github.com/jwalitptl/hospital-api/pkg/validator"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := sqlite.NewDB(cfg.Database.Path)
	if err != nil {
		log.Fatal(err, "failed to open database")
	}
	defer db.Close()

	patientRepo := sqlite.NewPatientRepository(db)
	doctorRepo := sqlite.NewDoctorRepository(db)
	nurseRepo := sqlite.NewNurseRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	roomRepo := sqlite.NewRoomRepository(db)
	inpatientRepo := sqlite.NewInpatientRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)

	m := metrics.NewMetrics("hospital_api")
	validate := validator.New()

	patientSvc := patientService.NewService(patientRepo, appointmentRepo, departmentRepo, validate)
	doctorSvc := doctorService.NewService(doctorRepo, departmentRepo, validate)
	nurseSvc := nurseService.NewService(nurseRepo, departmentRepo, validate)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo, patientRepo, validate)
	billingSvc := billingService.NewService(patientRepo, inpatientRepo, m)
	admissionSvc := admissionService.NewService(patientRepo, roomRepo, inpatientRepo, m, validate)
	departmentSvc := departmentService.NewService(departmentRepo, doctorRepo, nurseRepo, patientRepo, validate)
	directorySvc := directoryService.NewService(
		patientRepo,
		doctorRepo,
		nurseRepo,
		inpatientRepo,
		time.Duration(cfg.Directory.CacheTTLSeconds)*time.Second,
	)

	defaultBilling := model.BillingOptions{
		VATRate:    cfg.Billing.VATRate,
		ServiceFee: cfg.Billing.ServiceFee,
	}

	r := router.New(
		handler.New(db),
		router.Config{
			RateLimit: rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst: cfg.RateLimit.Burst,
			Timeout:   time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		},
		patientHandler.NewHandler(patientSvc, directorySvc),
		doctorHandler.NewHandler(doctorSvc, directorySvc),
		nurseHandler.NewHandler(nurseSvc, directorySvc),
		appointmentHandler.NewHandler(appointmentSvc, directorySvc),
		admissionHandler.NewHandler(admissionSvc, directorySvc),
		departmentHandler.NewHandler(departmentSvc),
		billingHandler.NewHandler(billingSvc, defaultBilling),
		directoryHandler.NewHandler(directorySvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "forced shutdown")
	}
	log.Info("server stopped")
}
