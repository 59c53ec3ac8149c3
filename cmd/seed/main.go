package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vkosyk/course-catalog-api/config"
	"github.com/vkosyk/course-catalog-api/internal/domain/entity"
	"github.com/vkosyk/course-catalog-api/internal/infrastructure/filestore"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

var sampleCourses = []entity.Course{
	{Title: "Python для початківців", Category: "programming", Price: 3200, Popularity: 92, Tags: []string{"Python", "backend"}, Description: "Основи мови Python: синтаксис, структури даних, перші проєкти."},
	{Title: "JavaScript та React", Category: "programming", Price: 4100, Popularity: 88, Tags: []string{"JavaScript", "React", "frontend"}, Description: "Сучасний фронтенд: від основ JS до компонентів React."},
	{Title: "Go для бекенд-розробки", Category: "programming", Price: 4500, Popularity: 75, Tags: []string{"Go", "backend", "API"}, Description: "Проєктування та розробка REST-сервісів мовою Go."},
	{Title: "Алгоритми та структури даних", Category: "programming", Price: 3800, Popularity: 64, Tags: []string{"algorithms", "interview"}, Description: "Класичні алгоритми і підготовка до технічних співбесід."},
	{Title: "SQL і бази даних", Category: "programming", Price: 2900, Popularity: 70, Tags: []string{"SQL", "PostgreSQL"}, Description: "Реляційні бази даних, запити, індекси та оптимізація."},
	{Title: "Основи UI/UX дизайну", Category: "design", Price: 3500, Popularity: 81, Tags: []string{"Figma", "UX"}, Description: "Дослідження користувачів, прототипування, робота у Figma."},
	{Title: "Графічний дизайн з нуля", Category: "design", Price: 3000, Popularity: 57, Tags: []string{"Photoshop", "Illustrator"}, Description: "Композиція, типографіка та робота з растровою графікою."},
	{Title: "Моушн-дизайн", Category: "design", Price: 4200, Popularity: 49, Tags: []string{"After Effects", "animation"}, Description: "Анімація інтерфейсів і відеографіка в After Effects."},
	{Title: "Вебдизайн та верстка", Category: "design", Price: 3300, Popularity: 66, Tags: []string{"HTML", "CSS", "frontend"}, Description: "Від макета до адаптивної верстки сторінки."},
	{Title: "Digital-маркетинг", Category: "marketing", Price: 2800, Popularity: 73, Tags: []string{"SMM", "SEO"}, Description: "Стратегія просування: соцмережі, пошукова оптимізація, аналітика."},
	{Title: "Контент-маркетинг", Category: "marketing", Price: 2400, Popularity: 52, Tags: []string{"copywriting", "content"}, Description: "Створення контенту, що продає: тексти, блоги, розсилки."},
	{Title: "Таргетована реклама", Category: "marketing", Price: 2600, Popularity: 61, Tags: []string{"ads", "SMM"}, Description: "Налаштування й оптимізація рекламних кампаній у соцмережах."},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("failed to create data dir: %v", err)
	}

	userRepo := filestore.NewUserRepository(cfg.DataDir)
	courseRepo := filestore.NewCourseRepository(cfg.DataDir)

	seedUser(userRepo, "Адміністратор", "admin@example.com", "admin12345", entity.RoleAdmin)
	seedUser(userRepo, "Демо Користувач", "demo@example.com", "password123", entity.RoleUser)

	existing, err := courseRepo.All()
	if err != nil {
		log.Fatalf("failed to read courses: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("courses already present (%d), skipping course seed\n", len(existing))
		return
	}
	for i := range sampleCourses {
		c := sampleCourses[i]
		if err := courseRepo.Create(&c); err != nil {
			log.Fatalf("failed to seed course %q: %v", c.Title, err)
		}
	}
	fmt.Printf("seeded %d courses\n", len(sampleCourses))
}

func seedUser(repo *filestore.UserRepository, name, email, password string, role entity.Role) {
	if _, err := repo.GetByEmail(email); err == nil {
		fmt.Printf("user %s already exists, skipping\n", email)
		return
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	u := &entity.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := repo.Create(u); err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	fmt.Printf("seeded user: id=%d email=%s role=%s password=%s\n", u.ID, u.Email, u.Role, password)
}
