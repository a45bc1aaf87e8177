package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres

	"github.com/neoglobal/pnl-reconciliation/consts"
	"github.com/neoglobal/pnl-reconciliation/handler"
	"github.com/neoglobal/pnl-reconciliation/infra/locker"
	reconciliationUsecase "github.com/neoglobal/pnl-reconciliation/usecase/reconciliation"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startReconcileExecutorWorker(h *handler.ReconciliationHandler, workerID int) {
	for {
		ctx := context.Background()
		err := h.ReconciliationExecution(ctx)
		switch {
		case errors.Is(err, handler.ErrNoPendingRun):
			// idle tick
		case err != nil:
			log.Printf("[Worker %d] error: %s", workerID, err.Error())
		default:
			log.Printf("[Worker %d] success", workerID)
		}

		time.Sleep(cfg.Interval)
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
}

func (a *App) startCronWorker(cfg CronWorkerConfig) {
	var wg sync.WaitGroup

	reconciliationUc := reconciliationUsecase.NewReconciliationUsecase(a.DB, a.Locker)
	h := handler.NewReconciliationHandler(reconciliationUc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			log.Printf("spawn [Worker %d]", workerID)
			cfg.startReconcileExecutorWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
}

func (a *App) Initialize(DbHost, DbPort, DbUser, DbName, DbPassword string) {
	var err error
	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", DbHost, DbPort, DbUser, DbName, DbPassword)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", DbName, err)
	}
	log.Printf("Connected to database %s", DbName)

	a.Locker = locker.New()
}

func (a *App) RunServer() {
	a.startCronWorker(CronWorkerConfig{
		Workers:  consts.DefaultWorkerNumber,
		Interval: consts.DefaultIntervalInSec * time.Second,
	})
}

func main() {
	app := App{}
	app.Initialize(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PASSWORD"))

	app.RunServer()
}
