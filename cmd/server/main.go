package main

import (
	"log"

	"footballer-app/internal/config"
	"footballer-app/internal/database"
	"footballer-app/internal/server"
)

func main() {
	log.Println("Footballer App Server Starting...")

	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	log.Printf("Конфигурация загружена успешно")
	log.Printf("Сервер будет запущен на %s", cfg.Server.Address())
	log.Printf("База данных: %s@%s:%s/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем подключение к базе данных
	db, err := database.NewConnection(&cfg.Database, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия подключения к базе данных: %v", err)
		}
	}()

	// Проверяем состояние миграций перед запуском.
	// "Грязное" состояние требует ручного вмешательства (cmd/migrate -force).
	migrator, err := database.NewMigratorFromConfig(&cfg.Database)
	if err != nil {
		log.Fatalf("Ошибка инициализации мигратора: %v", err)
	}
	if _, err := migrator.CheckDirty(); err != nil {
		log.Fatalf("Проверка миграций не пройдена: %v", err)
	}
	if err := migrator.Close(); err != nil {
		log.Printf("Ошибка закрытия мигратора: %v", err)
	}

	// Запускаем сервер (блокирует до получения сигнала остановки)
	srv := server.NewServer(cfg, db)
	if err := srv.Start(); err != nil {
		log.Fatalf("Ошибка работы сервера: %v", err)
	}
}
