package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample mapping XML to explore maplens with",
	Long: `Create a sample_mapping.xml demo file in the current directory.

The demo models a small customer-sales flow: two sources, a source
qualifier, a lookup, an expression, a filter, an aggregator and a
target. It includes one incomplete connector and one unconnected
source so the lint command has something to report.

Examples:
  maplens init
  maplens inspect sample_mapping.xml
  maplens lint sample_mapping.xml`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat("sample_mapping.xml"); err == nil {
			fmt.Println("❌ sample_mapping.xml already exists!")
			return
		}

		content := `<?xml version="1.0" encoding="UTF-8"?>
<POWERMART CREATION_DATE="01/15/2024 09:30:00" REPOSITORY_VERSION="188.96">
  <REPOSITORY NAME="DEV_REPO" VERSION="188" CODEPAGE="UTF-8" DATABASETYPE="Oracle">
    <FOLDER NAME="SALES_DW" GROUP="" OWNER="etl_dev" SHARED="NOTSHARED" DESCRIPTION="Sales data warehouse loads">
      <MAPPING NAME="m_customer_sales" DESCRIPTION="Load enriched customer sales into the warehouse" ISVALID="YES" OBJECTVERSION="1">
        <TRANSFORMATION NAME="SRC_CUSTOMERS" TYPE="Source Definition" DESCRIPTION="Customer master source">
          <TRANSFORMFIELD NAME="CUSTOMER_ID" DATATYPE="decimal" PRECISION="10" SCALE="0" NULLABLE="NOTNULL" PORTTYPE="OUTPUT"/>
          <TRANSFORMFIELD NAME="CUSTOMER_NAME" DATATYPE="string" PRECISION="120" SCALE="0" NULLABLE="NULL" PORTTYPE="OUTPUT"/>
          <TRANSFORMFIELD NAME="COUNTRY" DATATYPE="string" PRECISION="40" SCALE="0" NULLABLE="NULL" PORTTYPE="OUTPUT"/>
        </TRANSFORMATION>
        <TRANSFORMATION NAME="SRC_ORDERS" TYPE="Source Definition" DESCRIPTION="Order transactions source">
          <TRANSFORMFIELD NAME="ORDER_ID" DATATYPE="decimal" PRECISION="12" SCALE="0" NULLABLE="NOTNULL" PORTTYPE="OUTPUT"/>
          <TRANSFORMFIELD NAME="CUSTOMER_ID" DATATYPE="decimal" PRECISION="10" SCALE="0" NULLABLE="NOTNULL" PORTTYPE="OUTPUT"/>
          <TRANSFORMFIELD NAME="AMOUNT" DATATYPE="decimal" PRECISION="15" SCALE="2" NULLABLE="NULL" PORTTYPE="OUTPUT"/>
        </TRANSFORMATION>
        <TRANSFORMATION NAME="SQ_ORDERS" TYPE="Source Qualifier" DESCRIPTION="Reads order rows">
          <TRANSFORMFIELD NAME="ORDER_ID" DATATYPE="decimal" PRECISION="12" SCALE="0" NULLABLE="NOTNULL" PORTTYPE="INPUT/OUTPUT"/>
          <TRANSFORMFIELD NAME="CUSTOMER_ID" DATATYPE="decimal" PRECISION="10" SCALE="0" NULLABLE="NOTNULL" PORTTYPE="INPUT/OUTPUT"/>
          <TRANSFORMFIELD NAME="AMOUNT" DATATYPE="decimal" PRECISION="15" SCALE="2" NULLABLE="NULL" PORTTYPE="INPUT/OUTPUT"/>
          <TABLEATTRIBUTE NAME="Source Filter" VALUE="ORDERS.STATUS = 'COMPLETE'"/>
        </TRANSFORMATION>
        <TRANSFORMATION NAME="LKP_CUSTOMER" TYPE="Lookup Procedure" DESCRIPTION="Resolve customer names">
          <TRANSFORMFIELD NAME="IN_CUSTOMER_ID" DATATYPE="decimal" PRECISION="10" SCALE="0" NULLABLE="NOTNULL" PORTTYPE="INPUT"/>
          <TRANSFORMFIELD NAME="CUSTOMER_NAME" DATATYPE="string" PRECISION="120" SCALE="0" NULLABLE="NULL" PORTTYPE="LOOKUP/OUTPUT"/>
          <TABLEATTRIBUTE NAME="Lookup table name" VALUE="CUSTOMERS"/>
          <TABLEATTRIBUTE NAME="Lookup condition" VALUE="CUSTOMER_ID = IN_CUSTOMER_ID"/>
        </TRANSFORMATION>
        <TRANSFORMATION NAME="EXP_ENRICH" TYPE="Expression" DESCRIPTION="Derive tax and total">
          <TRANSFORMFIELD NAME="AMOUNT" DATATYPE="decimal" PRECISION="15" SCALE="2" NULLABLE="NULL" PORTTYPE="INPUT"/>
          <TRANSFORMFIELD NAME="CUSTOMER_NAME" DATATYPE="string" PRECISION="120" SCALE="0" NULLABLE="NULL" PORTTYPE="INPUT/OUTPUT"/>
          <TRANSFORMFIELD NAME="TAX" DATATYPE="decimal" PRECISION="15" SCALE="2" NULLABLE="NULL" PORTTYPE="VARIABLE" EXPRESSION="AMOUNT * 0.08"/>
          <TRANSFORMFIELD NAME="TOTAL" DATATYPE="decimal" PRECISION="15" SCALE="2" NULLABLE="NULL" PORTTYPE="OUTPUT" EXPRESSION="AMOUNT + TAX"/>
        </TRANSFORMATION>
        <TRANSFORMATION NAME="FIL_LARGE" TYPE="Filter" DESCRIPTION="Keep large orders only">
          <TRANSFORMFIELD NAME="CUSTOMER_NAME" DATATYPE="string" PRECISION="120" SCALE="0" NULLABLE="NULL" PORTTYPE="INPUT/OUTPUT"/>
          <TRANSFORMFIELD NAME="TOTAL" DATATYPE="decimal" PRECISION="15" SCALE="2" NULLABLE="NULL" PORTTYPE="INPUT/OUTPUT"/>
          <TABLEATTRIBUTE NAME="Filter Condition" VALUE="TOTAL &gt; 100"/>
        </TRANSFORMATION>
        <TRANSFORMATION NAME="AGG_SALES" TYPE="Aggregator" DESCRIPTION="Total sales per customer">
          <TRANSFORMFIELD NAME="CUSTOMER_NAME" DATATYPE="string" PRECISION="120" SCALE="0" NULLABLE="NULL" PORTTYPE="INPUT/OUTPUT"/>
          <TRANSFORMFIELD NAME="TOTAL" DATATYPE="decimal" PRECISION="15" SCALE="2" NULLABLE="NULL" PORTTYPE="INPUT"/>
          <TRANSFORMFIELD NAME="TOTAL_SALES" DATATYPE="decimal" PRECISION="18" SCALE="2" NULLABLE="NULL" PORTTYPE="OUTPUT" EXPRESSION="SUM(TOTAL)"/>
        </TRANSFORMATION>
        <TRANSFORMATION NAME="TGT_CUSTOMER_SALES" TYPE="Target Definition" DESCRIPTION="Warehouse sales table">
          <TRANSFORMFIELD NAME="CUSTOMER_NAME" DATATYPE="string" PRECISION="120" SCALE="0" NULLABLE="NULL" PORTTYPE="INPUT"/>
          <TRANSFORMFIELD NAME="TOTAL_SALES" DATATYPE="decimal" PRECISION="18" SCALE="2" NULLABLE="NULL" PORTTYPE="INPUT"/>
        </TRANSFORMATION>
        <CONNECTOR FROMFIELD="ORDER_ID" FROMINSTANCE="SRC_ORDERS" TOFIELD="ORDER_ID" TOINSTANCE="SQ_ORDERS"/>
        <CONNECTOR FROMFIELD="CUSTOMER_ID" FROMINSTANCE="SRC_ORDERS" TOFIELD="CUSTOMER_ID" TOINSTANCE="SQ_ORDERS"/>
        <CONNECTOR FROMFIELD="AMOUNT" FROMINSTANCE="SRC_ORDERS" TOFIELD="AMOUNT" TOINSTANCE="SQ_ORDERS"/>
        <CONNECTOR FROMFIELD="CUSTOMER_ID" FROMINSTANCE="SQ_ORDERS" TOFIELD="IN_CUSTOMER_ID" TOINSTANCE="LKP_CUSTOMER"/>
        <CONNECTOR FROMFIELD="AMOUNT" FROMINSTANCE="SQ_ORDERS" TOFIELD="AMOUNT" TOINSTANCE="EXP_ENRICH"/>
        <CONNECTOR FROMFIELD="CUSTOMER_NAME" FROMINSTANCE="LKP_CUSTOMER" TOFIELD="CUSTOMER_NAME" TOINSTANCE="EXP_ENRICH"/>
        <CONNECTOR FROMFIELD="CUSTOMER_NAME" FROMINSTANCE="EXP_ENRICH" TOFIELD="CUSTOMER_NAME" TOINSTANCE="FIL_LARGE"/>
        <CONNECTOR FROMFIELD="TOTAL" FROMINSTANCE="EXP_ENRICH" TOFIELD="TOTAL" TOINSTANCE="FIL_LARGE"/>
        <CONNECTOR FROMFIELD="CUSTOMER_NAME" FROMINSTANCE="FIL_LARGE" TOFIELD="CUSTOMER_NAME" TOINSTANCE="AGG_SALES"/>
        <CONNECTOR FROMFIELD="TOTAL" FROMINSTANCE="FIL_LARGE" TOFIELD="TOTAL" TOINSTANCE="AGG_SALES"/>
        <CONNECTOR FROMFIELD="CUSTOMER_NAME" FROMINSTANCE="AGG_SALES" TOFIELD="CUSTOMER_NAME" TOINSTANCE="TGT_CUSTOMER_SALES"/>
        <CONNECTOR FROMFIELD="TOTAL_SALES" FROMINSTANCE="AGG_SALES" TOFIELD="TOTAL_SALES" TOINSTANCE="TGT_CUSTOMER_SALES"/>
        <CONNECTOR FROMFIELD="COUNTRY" FROMINSTANCE="SRC_CUSTOMERS" TOINSTANCE="EXP_ENRICH"/>
      </MAPPING>
    </FOLDER>
  </REPOSITORY>
</POWERMART>
`

		if err := os.WriteFile("sample_mapping.xml", []byte(content), 0644); err != nil {
			fmt.Println("❌ Error creating sample_mapping.xml:", err)
			return
		}

		fmt.Println("✅ Created sample_mapping.xml demo file.")
		fmt.Println("📝 Run 'maplens inspect sample_mapping.xml' to see the mapping report")
		fmt.Println("🚀 Run 'maplens lint sample_mapping.xml' to check it for issues")
	},
}
