//go:build integration
// +build integration

package tests

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	dbadapter "besttodo/internal/adapter/db"
	httpadapter "besttodo/internal/adapter/http"
	"besttodo/internal/adapter/http/handlers"
	appservice "besttodo/internal/app/service"
	"besttodo/internal/config"
	"besttodo/pkg/translator"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

const subjectHeader = "X-Auth-Subject"

type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	Tables     dbadapter.Tables
	Router     *gin.Engine
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}))

	cfg := &config.Config{
		StoreDriver:  config.DriverMySQL,
		DbHost:       envOrDefault("MYSQL_HOST", "127.0.0.1"),
		DbPort:       envOrDefault("MYSQL_PORT", "3306"),
		DbUser:       envOrDefault("MYSQL_ROOT_USER", "root"),
		DbPassword:   envOrDefault("MYSQL_ROOT_PASSWORD", "root"),
		DbName:       envOrDefault("MYSQL_TEST_DATABASE", "besttodo_test"),
		TasksTable:   "tasks",
		FoldersTable: "folders",
	}

	adminDB, err := sqlx.Connect("mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/?parseTime=true",
		cfg.DbUser, cfg.DbPassword, cfg.DbHost, cfg.DbPort))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", cfg.DbName))
	s.Require().NoError(err)

	db, err := dbadapter.ConnectDB(cfg)
	s.Require().NoError(err)
	s.DB = db
	s.Tables = dbadapter.TablesFromConfig(cfg)
	s.testDBName = cfg.DbName
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

// ResetDatabase recreates the schema and a fresh router over it.
func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, table := range []string{s.Tables.Tasks, s.Tables.Folders} {
		_, err := s.DB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", table))
		s.Require().NoError(err)
	}
	s.Require().NoError(dbadapter.Migrate(context.Background(), s.DB, s.Tables))

	tasks := dbadapter.NewTaskRepository(s.DB, s.Tables)
	folders := dbadapter.NewFolderRepository(s.DB, s.Tables)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.RouteOptions{
		AuthSubjectHeader: subjectHeader,
		CORSAllowOrigin:   "*",
	}, httpadapter.Handlers{
		Health:  handlers.NewHealthHandler(dbadapter.NewHealthChecker(s.DB), handlers.AppInfo{Name: "besttodo"}),
		Tasks:   handlers.NewTaskHandler(appservice.NewTaskService(tasks, folders)),
		Folders: handlers.NewFolderHandler(appservice.NewFolderService(folders)),
	})
	s.Router = router
}

func (s *IntegrationSuiteBase) Do(method, target, owner, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if owner != "" {
		req.Header.Set(subjectHeader, owner)
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
