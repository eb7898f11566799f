package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoutesCmd(t *testing.T) {
	// Arrange
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENVIRONMENT", "TESTING")
	t.Setenv("LOG_LEVEL", "ERROR")

	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetArgs([]string{"routes"})

	// Act
	err := rootCmd.Execute()

	// Assert
	require.Nil(t, err)
	out := b.String()
	require.Contains(t, out, "METHOD")
	require.Contains(t, out, "GET     /controller/void")
	require.Contains(t, out, "POST    /controller/returnStringForForward")
	require.Contains(t, out, "/assets/")
}

func TestEnvCmd(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetArgs([]string{"env"})

	// Act
	err := rootCmd.Execute()

	// Assert
	require.Nil(t, err)
	require.Contains(t, b.String(), "VIEW_NOT_FOUND_CODE")
}
