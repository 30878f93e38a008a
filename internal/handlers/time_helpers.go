package handlers

import "time"

const dateLayout = "2006-01-02"

func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func today() string {
	return time.Now().Format(dateLayout)
}
