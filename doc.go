/*
Package contaazul-app-sheets copies the category and cost centre breakdown of Conta Azul financial events
to Google Sheets.

contaazul-app-sheets is intended to be run from a cron job or CI workflow. Each run reads the financial event IDs
from an input worksheet, retrieves the summary of every event from the Conta Azul finance API and replaces the
contents of an output worksheet with one row per category ratio.

contaazul-app-sheets supports the following commands:

  - payables, to copy the accounts payable detail (all columns, cost centres included)
  - receivables, to copy the accounts receivable detail (fixed column layout)
  - version, to display the current version
*/
package sheets
