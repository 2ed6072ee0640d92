package utils

import (
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"

	"scholarship/config"
)

// SendSMS posts a text message to the local SMS gateway.
func SendSMS(mobile, message string) error {
	cfg := config.AppConfig
	if cfg.LocalTextApiUrl == "" || cfg.LocalTextApi == "" {
		log.Printf("SMS to %s skipped: SMS gateway is not configured", mobile)
		return nil
	}

	client := resty.New()
	resp, err := client.R().
		SetFormData(map[string]string{
			"apikey":  cfg.LocalTextApi,
			"numbers": mobile,
			"message": message,
		}).
		Post(cfg.LocalTextApiUrl)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// SendApplicationStatusSMS texts a beneficiary about an application decision.
func SendApplicationStatusSMS(mobile, applicationType, status string) error {
	label := applicationTypeLabels[applicationType]
	if label == "" {
		label = applicationType
	}
	message := fmt.Sprintf("Your %s scholarship application has been %s. Log in to the portal for details.", label, status)
	return SendSMS(mobile, message)
}
