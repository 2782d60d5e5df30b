package utils

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	os.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
