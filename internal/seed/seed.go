// Package seed provides the default clinic knowledge base.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"clinic-faq/internal/contextutil"
	"clinic-faq/internal/storage"
)

// Entries returns the default clinic FAQs. Each call returns a fresh copy.
func Entries() []storage.FAQRecord {
	return []storage.FAQRecord{
		{
			Question: "What are your clinic operating hours?",
			Answer:   "Our clinic is open Monday to Friday from 8:00 AM to 6:00 PM, and Saturday from 8:00 AM to 2:00 PM. We are closed on Sundays and public holidays. For emergency cases outside operating hours, please visit the nearest hospital emergency department.",
			Tags:     []string{"hours"},
			Lang:     "en",
		},
		{
			Question: "Are you open during public holidays in Malaysia?",
			Answer:   "We are closed during Malaysian public holidays including Hari Raya, Chinese New Year, Deepavali, Christmas, and National Day. However, we provide emergency contact information for urgent medical needs during these periods.",
			Tags:     []string{"hours"},
			Lang:     "en",
		},
		{
			Question: "How can I book an appointment with the doctor?",
			Answer:   "You can book appointments through our WhatsApp at +60 12-345-6789, call us at +60 3-1234-5678, or visit our clinic directly. We recommend booking in advance, especially for specialist consultations. Walk-ins are welcome but may have longer waiting times.",
			Tags:     []string{"booking"},
			Lang:     "en",
		},
		{
			Question: "Can I reschedule my appointment online?",
			Answer:   "Yes, you can reschedule appointments by messaging us on WhatsApp at +60 12-345-6789 or calling our clinic. Please provide at least 24 hours notice for rescheduling to avoid cancellation charges of RM 50.",
			Tags:     []string{"booking"},
			Lang:     "en",
		},
		{
			Question: "What is your cancellation policy for appointments?",
			Answer:   "Appointments can be cancelled free of charge with 24 hours advance notice. Cancellations with less than 24 hours notice or no-shows will incur a RM 50 cancellation fee. Emergency situations are considered case-by-case.",
			Tags:     []string{"booking"},
			Lang:     "en",
		},
		{
			Question: "Where is your clinic located and how do I get there?",
			Answer:   "We are located at 123 Jalan Bukit Bintang, Kuala Lumpur 55100, Malaysia. We are accessible by LRT (Bukit Bintang station, 5 minutes walk) and multiple bus routes. Grab and taxi services are readily available to our location.",
			Tags:     []string{"location"},
			Lang:     "en",
		},
		{
			Question: "Do you provide parking facilities?",
			Answer:   "Yes, we have 20 dedicated parking spaces for patients. Parking is free for the first 2 hours with validation from our reception. Additional hours are charged at RM 3 per hour. Street parking is also available nearby.",
			Tags:     []string{"location"},
			Lang:     "en",
		},
		{
			Question: "What COVID-19 vaccines do you offer?",
			Answer:   "We provide Pfizer-BioNTech, Sinovac, and AstraZeneca COVID-19 vaccines. All vaccines are approved by the Malaysian Ministry of Health. Please bring your MySejahtera app and IC for vaccination registration.",
			Tags:     []string{"services", "vaccinations"},
			Lang:     "en",
		},
		{
			Question: "Do you provide travel vaccinations?",
			Answer:   "Yes, we offer comprehensive travel vaccination services including Hepatitis A/B, Typhoid, Japanese Encephalitis, and Yellow Fever vaccines. Please book a consultation at least 4-6 weeks before travel for proper vaccination scheduling.",
			Tags:     []string{"services", "vaccinations"},
			Lang:     "en",
		},
		{
			Question: "What childhood vaccines do you provide?",
			Answer:   "We follow the Malaysian National Immunisation Programme schedule, providing vaccines for Hepatitis B, DTP, Polio, Hib, MMR, and others. We also offer optional vaccines like Pneumococcal, Rotavirus, and Chickenpox vaccines.",
			Tags:     []string{"services", "vaccinations"},
			Lang:     "en",
		},
		{
			Question: "Do you accept insurance and what are your payment methods?",
			Answer:   "We accept major Malaysian insurance panels including Great Eastern, Allianz, AIA, and Prudential. Payment methods include cash, credit/debit cards, online banking, and medical insurance direct billing for panel patients.",
			Tags:     []string{"billing"},
			Lang:     "en",
		},
		{
			Question: "How much does a general consultation cost?",
			Answer:   "General consultations start from RM 80 for adults and RM 60 for children under 12. Specialist consultations range from RM 150-300 depending on the specialty. Medical certificate issuance is RM 20. Prices may vary for complex cases.",
			Tags:     []string{"billing"},
			Lang:     "en",
		},
		{
			Question: "Can I get a medical certificate and how much does it cost?",
			Answer:   "Yes, we can issue medical certificates for sick leave, fitness for work, or travel purposes. The cost is RM 20 for standard MC and RM 50 for detailed medical reports. Same-day issuance is available for urgent needs.",
			Tags:     []string{"billing"},
			Lang:     "en",
		},
		{
			Question: "What are your WhatsApp support hours?",
			Answer:   "Our WhatsApp support (+60 12-345-6789) is available Monday to Friday from 8:30 AM to 5:30 PM, and Saturday from 8:30 AM to 1:30 PM. We respond to messages within 30 minutes during business hours. For after-hours emergencies, please call our clinic or visit the hospital.",
			Tags:     []string{"support"},
			Lang:     "en",
		},
		{
			Question: "Can I get test results and prescriptions through WhatsApp?",
			Answer:   "For privacy and security reasons, we cannot share detailed test results or prescription information via WhatsApp. However, you can use WhatsApp to inquire about result availability, prescription refills, and schedule follow-up appointments. Detailed results must be collected in person or through our secure patient portal.",
			Tags:     []string{"support"},
			Lang:     "en",
		},
	}
}

// Seed replaces every FAQ in store with Entries and returns how many were inserted.
// It is not transactional: a failure part way leaves the entries inserted so far.
func Seed(ctx context.Context, store storage.FAQStore) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := store.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear faqs: %w", err)
	}
	logger.InfoContext(ctx, "cleared existing faqs")

	entries := Entries()
	for i := range entries {
		if err := store.Create(ctx, &entries[i]); err != nil {
			return i, fmt.Errorf("failed to seed faq %q: %w", entries[i].Question, err)
		}
		logger.DebugContext(ctx, "seeded faq", slog.Int64("id", entries[i].ID), slog.String("question", entries[i].Question))
	}

	logger.InfoContext(ctx, "seeding completed", "count", len(entries))
	return len(entries), nil
}
