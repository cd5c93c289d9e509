package cmd

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

const sessionKeyBytes = 32

var generateSessionKeyCmd = &cobra.Command{
	Use:   "generate-session-key",
	Short: "Generate a random session key",
	Long: `Generate a random key for signing session cookies.

Add the generated key to your configuration file as session_key or export it as GIGFINDER_SESSION_KEY.`,
	RunE: generateSessionKey,
}

func init() {
	rootCmd.AddCommand(generateSessionKeyCmd)
}

func generateSessionKey(cmd *cobra.Command, args []string) error {
	key := make([]byte, sessionKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate session key: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(key)

	fmt.Println("Generated session key:")
	fmt.Println()
	fmt.Println(encoded)
	fmt.Println()
	fmt.Println("Add it to your configuration file:")
	fmt.Println()
	fmt.Printf("session_key: \"%s\"\n", encoded)
	return nil
}
