package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vkosyk/course-catalog-api/config"
	"github.com/vkosyk/course-catalog-api/internal/domain/repository"
	"github.com/vkosyk/course-catalog-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client

	jwtManager *helpers.JWTManager

	courseRepo      repository.CourseRepository
	userRepo        repository.UserRepository
	applicationRepo repository.ApplicationRepository
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}

func SetCourseRepo(r repository.CourseRepository)           { courseRepo = r }
func GetCourseRepo() repository.CourseRepository            { return courseRepo }
func SetUserRepo(r repository.UserRepository)               { userRepo = r }
func GetUserRepo() repository.UserRepository                { return userRepo }
func SetApplicationRepo(r repository.ApplicationRepository) { applicationRepo = r }
func GetApplicationRepo() repository.ApplicationRepository  { return applicationRepo }
